/*
Package homomorph is a pure Go implementation of a toy symmetric homomorphic encryption scheme over
polynomials with coefficients modulo 2. It encrypts bits and fixed-width unsigned integers, and adds
encrypted integers with a ripple-carry adder built from homomorphic Boolean gates.

The scheme is not secure and does not support bootstrapping: parameters must be chosen large enough
for the depth of the circuit evaluated.
*/
package homomorph
