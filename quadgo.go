/*
Package quadgo is a pure Go library for modeling real-valued functions of one
variable and evaluating their definite integrals. It provides interchangeable
integration backends, from exact antiderivative-based integration to discrete
Riemann summation, behind a single interface, enabling side-by-side comparison
of exact and approximate results over the same functions and bounds.
*/
package quadgo
