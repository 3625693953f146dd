package community_test

import (
	"fmt"

	"github.com/katalvlaran/mlnet/community"
	"github.com/katalvlaran/mlnet/core"
)

// ExampleGetMLCommunity detects two groups of friends whose ties show up in
// both a "chat" and an "office" layer.
func ExampleGetMLCommunity() {
	net := core.NewNetwork()
	for _, layer := range []string{"chat", "office"} {
		_, _ = net.AddEdge(layer, "ann", "bob", 1)
		_, _ = net.AddEdge(layer, "bob", "cid", 1)
		_, _ = net.AddEdge(layer, "cid", "ann", 1)
		_, _ = net.AddEdge(layer, "dan", "eve", 1)
		_, _ = net.AddEdge(layer, "eve", "fay", 1)
		_, _ = net.AddEdge(layer, "fay", "dan", 1)
	}
	_, _ = net.AddEdge("office", "cid", "dan", 0.1)

	sets, err := community.GetMLCommunity(net, 1, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range sets {
		fmt.Println(s.ID, s.Names())
	}
	// Output:
	// 0 [ann bob cid]
	// 1 [dan eve fay]
}
