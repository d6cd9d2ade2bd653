// Package analysis summarises escape-time traces.
//
//   - [Summarize]: counts of escaped, bounded and pre-checked pixels
//   - [Histogram]: escape iterations binned over the cutoff
//   - [PlotHistogram]: terminal plot of a histogram
//
// Every function takes a [mandel.EscapeMap], so the statistics describe
// exactly the pixels a render would colour.
//
//	em, _ := mandel.NewRenderer().Trace(ctx, vp)
//	fmt.Println(analysis.Summarize(em))
package analysis
