// Package isodd provides exhaustive datasets of unsigned integer parity.
// Every value of the 8-bit or 16-bit domain is a sample labelled with its
// oddness, so the datasets can be materialized, split or compiled into a
// quaternary filter the same way as any other boolean dataset.
package isodd
