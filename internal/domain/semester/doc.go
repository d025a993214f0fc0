// Package semester models academic semesters of a three-term year (Spring,
// Summer, Fall) and converts them between a compact integer code and a
// human-readable string.
//
// A code is 10*(year-1900) plus the digit of the term: with the default
// table Spring is 4, Summer 6 and Fall 8, so "Fall 2024" is 1248. The term
// table is an explicit value (TermTable) from which a Codec is built; the
// package-level functions use DefaultCodec.
//
// Semester values are immutable. Arithmetic (AddSemesters, AddYears and their
// subtractive counterparts) returns a new Semester and treats the terms of a
// year as a cycle, carrying into the year with floor division so that
// shifting backward across a year boundary is exact.
//
// Calendar derives the current, next and previous semester from an injected
// Clock, and random semesters from an injected RandomSource.
package semester
