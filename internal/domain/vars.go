package domain

// Vars is a key/value store for values extracted from decoded flights.
type Vars map[string]string

// Get returns a value for the given key and a boolean indicating if it exists.
func Get(vars Vars, key string) (string, bool) {
	if vars == nil {
		return "", false
	}
	val, ok := vars[key]
	return val, ok
}

// QueryResult reports the outcome of a single named query.
type QueryResult struct {
	Name    string
	Success bool
	Message string
}
