package msgfile

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/aalvaropc/pnladl/internal/domain"
	"github.com/aalvaropc/pnladl/internal/ports"
)

// StdinPath makes LoadMessage read from the configured stdin reader.
const StdinPath = "-"

var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// Extensions recognized by ListMessages.
var messageExts = map[string]bool{
	".pnl": true,
	".adl": true,
	".txt": true,
}

type Loader struct {
	messagesDir string
	stdin       io.Reader
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{messagesDir: "messages", stdin: os.Stdin}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithMessagesDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.messagesDir = dir
		}
	}
}

func WithStdin(r io.Reader) Option {
	return func(l *Loader) { l.stdin = r }
}

var _ ports.MessageLoader = (*Loader)(nil)

// LoadMessage reads a message and splits it into lines. Any of \r\n, \r or \n
// ends a line. A trailing line break does not produce an extra empty line.
func (l *Loader) LoadMessage(path string) ([]string, error) {
	var (
		b   []byte
		err error
	)
	if path == StdinPath {
		b, err = io.ReadAll(l.stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, &domain.OpError{
			Op:   "msgfile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	return SplitLines(string(b)), nil
}

// SplitLines splits text on any line break convention.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := lineBreak.Split(text, -1)
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (l *Loader) ListMessages(root string) ([]domain.MessageRef, error) {
	dir := filepath.Join(root, l.messagesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "msgfile.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.MessageRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !messageExts[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		refs = append(refs, domain.MessageRef{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}
