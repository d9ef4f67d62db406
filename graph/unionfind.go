package graph

// unionFind 并查集，用于导线的等电位合并。
// 合并时保留编号较小的根，保证接地节点0在任何合并中存活。
type unionFind struct {
	parent []int
}

// newUnionFind 创建n个独立集合
func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

// find 查找根并做路径压缩
func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// union 合并两个集合，编号较小的根存活
func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if ra < rb {
		uf.parent[rb] = ra
	} else {
		uf.parent[ra] = rb
	}
}
