// Package validation owns the error taxonomy of a clampsum run and the rules
// every decimal value must satisfy, whether it arrives as a command-line
// argument, a parameter file attribute, or a line of standard input.
//
// All values are exact base-10 decimals bounded to [0, 1,000,000,000]. A
// failure is reported as an *Error whose Kind identifies the violated rule and
// whose message is the diagnostic printed to the user.
package validation
