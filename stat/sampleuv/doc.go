/*
Package sampleuv implements advanced sampling routines from explicit and implicit
probability distributions.

Each sampling routine is implemented as a stateless function with a
complementary wrapper type. The wrapper types allow the sampling routines
to implement interfaces.
*/
package sampleuv // import "github.com/flexhat/flex/stat/sampleuv"
