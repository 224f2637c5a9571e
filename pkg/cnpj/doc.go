// Package cnpj validates alphanumeric CNPJ identifiers and computes their
// check digits.
//
// An alphanumeric CNPJ has 14 characters: a 12-character base drawn from
// 0-9 and A-Z, followed by two numeric check digits (DV). The check digits
// are produced by a weighted modulo-11 checksum in which every character
// contributes its ASCII code minus 48, so digits keep their face value and
// letters map to A=17, B=18, ... Z=42.
//
// # Entry points
//
// Two result shapes are exposed on purpose:
//
//   - IsValid reports a plain bool and never surfaces an error. It is meant
//     for batch validation where a single bad entry must not abort the run.
//   - CalculateCheckDigits returns the two-digit DV or one of the sentinel
//     errors (ErrInvalidCharacters, ErrInvalidLength, ErrInvalidFormat,
//     ErrAllZeros, ErrInternal) so callers can report why a base was rejected.
//
// Parse sits between the two: it runs the same gates as IsValid and returns
// a typed CNPJ value or the error that stopped it.
//
// # Masks
//
// Inputs may carry the usual formatting separators ".", "-" and "/", for
// example "12.ABC.345/01DE-35". RemoveMask strips them and upper-cases the
// remainder. Any other character is rejected before normalization.
//
// # Usage
//
//	if cnpj.IsValid("12.ABC.345/01DE-35") {
//	    // accept
//	}
//
//	dv, err := cnpj.CalculateCheckDigits("12ABC34501DE")
//	if errors.Is(err, cnpj.ErrAllZeros) {
//	    // reject
//	}
//	// dv == "35"
//
// All functions are pure and operate on constant tables, so they are safe for
// concurrent use without synchronization.
package cnpj
