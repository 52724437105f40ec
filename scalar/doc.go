// Package scalar provides deterministic, precision-tolerant floating-point
// primitives: square root, integer power, factorial, trigonometry, modulo,
// sign and absolute value, epsilon-based comparisons, angle conversion and
// greatest common divisor.
//
// Every numeric operation has two evaluation modes. The series mode is built
// from self-contained iterative algorithms (Newton-Raphson, Taylor series,
// binary exponentiation) and never calls a numeric library. The platform mode
// delegates to the Go math packages (math for float64, math32 for float32).
// The two modes agree within the width's epsilon for finite inputs away from
// singularities.
//
// The package-level functions dispatch to the highest-priority kernel family
// permitted by the environment: platform by default, series when SCALAR_MODE
// is "series" or when the module is built with the purego tag. Callers that
// want the mode fixed at compile time use the Series and Platform evaluator
// types directly, or accept an Evaluator.
//
// All functions are generic over float32 and float64 (and types derived from
// them). The width of the type selects the constant table and the comparison
// epsilon: 1e-9 for float64, 1e-5 for float32.
package scalar
