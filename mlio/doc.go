// Package mlio reads multilayer edge lists into core.Network and writes
// detection results.
//
// Edge list format (one record per line, comma separated by default):
//
//	layer,actor1,actor2[,weight]   edge; weight defaults to 1
//	layer,actor                    presence only (isolated node)
//	# comment                      ignored, as are blank lines
//
// Repeated edges accumulate their weights, as core.Network.AddEdge does.
//
// Outputs:
//
//	WriteCommunitiesCSV  actor,layer,community rows in supra-node order
//	WriteResultJSON      one JSON document with levels and actor sets
package mlio
