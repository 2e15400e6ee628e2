// Package codec reads and writes well sets, plates and stacks as text.
//
// Three formats share the Format interface:
//
//   - JSON: one object per container, values as numbers ("NaN", "+Inf" and
//     "-Inf" as strings)
//   - XML: elements with label and dimension attributes
//   - Tabular: delimiter-separated lines, tab by default, one well per line
//
// Tabular also renders a per-well result as a plate-shaped grid:
//
//	t, _ := codec.NewTabular()
//	t.WriteLayout(os.Stdout, p.Rows(), p.Columns(), stats.Compute(p, stats.Mean))
//
// Decoders rebuild containers through the plate package, so positions
// outside a plate, repeated wells and malformed IDs are reported as errors.
package codec
