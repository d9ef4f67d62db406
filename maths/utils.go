package maths

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Abs 浮点绝对值
func Abs[T constraints.Float](v T) T {
	return T(math.Abs(float64(v)))
}

// MaxAbs 返回向量中绝对值最大的元素
func MaxAbs[T constraints.Float](vs []T) (max T) {
	for _, v := range vs {
		if a := Abs(v); a > max {
			max = a
		}
	}
	return max
}

// Near 容差比较
func Near[T constraints.Float](a, b, tol T) bool {
	return Abs(a-b) <= tol
}
