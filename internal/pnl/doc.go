// Package pnl converts PNL (Passenger Name List) messages to and from
// [domain.Flight] records.
//
// A message looks like this:
//
//	PNL
//
//	NO6149 07SEP RHO
//
//	1ALBANESI/MARCELLO-MR
//	.L/655F43
//	.R/TOP AL.L
//	.R/PDBG HK1 BAGS 01
//	ENDPNL
//
// The first line opens the message, the next non-blank line is the header
// (flight number, DDMON date and route, separated by spaces or slashes), and
// every line starting with "1" opens a passenger block. Lines starting with
// "." add fields to the passenger being accumulated; tags this package does not
// know are skipped. Only ENDPNL flushes the last passenger: a block left open
// at the end of input is dropped.
//
// [Encode] writes a flight back in a flat line format. It is not the inverse
// of [Decoder.Decode]: the header line, the passenger header and the TKNE
// field order differ from what the decoder reads.
package pnl
