// Package sampling applies group-level Laplace-noised case duplication
// and removal to a budgeted row set, then attenuates each surviving
// row's time-noise budget by how many times its case was duplicated.
//
// The two passes are kept in one package because they share the
// duplication counter artifact: the sampler produces it, the injector
// consumes it, and no other caller needs the intermediate value.
package sampling
