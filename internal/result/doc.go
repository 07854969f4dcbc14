// Package result reads the tab-separated result files written by the k-mer
// query tool and filters their entries by hit ratio.
//
// A result file starts with a header line `<label>\t<total>` where total is
// the number of query k-mers. Every following non-empty line is
// `<name>\t<count>`: the number of those k-mers found in sample name.
// The ratio of an entry is count / total; an entry passes a threshold theta
// when its ratio is strictly greater than theta.
package result
