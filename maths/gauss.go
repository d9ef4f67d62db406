// Package maths 提供MNA系统的直接求解。
// 采用带部分主元的高斯消元，一次求解，无迭代精化，
// 相同输入必然得到相同输出或相同的奇异失败。
package maths

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular 系统矩阵奇异（通常意味着存在无对地通路的悬浮子电路）
var ErrSingular = errors.New("matrix is singular")

// SolveGauss 求解 A·x = b（高斯消元+部分主元）。
// 参数:
//
//	a   - 方阵A，就地消元，调用后内容被破坏
//	b   - 右端向量b，就地消元，调用后内容被破坏
//	tol - 主元奇异容差，交换后主元绝对值低于该值判为奇异
//
// 返回:
//
//	解向量x，或 ErrSingular
//
// 算法步骤:
//  1. 对每一列k：在[k, n-1]行中选当前列绝对值最大的行交换到主元位
//  2. 主元低于容差时判为奇异，拒绝除以近零值
//  3. 消去主元以下元素，同步处理右端向量
//  4. 自最后一行回代得到解
func SolveGauss(a *mat.Dense, b *mat.VecDense, tol float64) (*mat.VecDense, error) {
	n, cols := a.Dims()
	if n != cols {
		return nil, errors.New("solve gauss: input must be square matrix")
	}
	if b.Len() != n {
		return nil, errors.New("solve gauss: vector dimension mismatch")
	}
	for k := 0; k < n; k++ {
		// 部分主元选择
		maxRow := k
		maxAbsVal := math.Abs(a.At(k, k))
		for i := k + 1; i < n; i++ {
			if v := math.Abs(a.At(i, k)); v > maxAbsVal {
				maxAbsVal = v
				maxRow = i
			}
		}
		if maxAbsVal < tol {
			return nil, ErrSingular
		}
		// 行交换
		if maxRow != k {
			for j := k; j < n; j++ {
				v1, v2 := a.At(k, j), a.At(maxRow, j)
				a.Set(k, j, v2)
				a.Set(maxRow, j, v1)
			}
			v1, v2 := b.AtVec(k), b.AtVec(maxRow)
			b.SetVec(k, v2)
			b.SetVec(maxRow, v1)
		}
		// 消元
		pivot := a.At(k, k)
		for i := k + 1; i < n; i++ {
			factor := a.At(i, k) / pivot
			if factor == 0 {
				continue
			}
			a.Set(i, k, 0)
			for j := k + 1; j < n; j++ {
				a.Set(i, j, a.At(i, j)-factor*a.At(k, j))
			}
			b.SetVec(i, b.AtVec(i)-factor*b.AtVec(k))
		}
	}
	// 回代
	x := mat.NewVecDense(n, nil)
	for i := n - 1; i >= 0; i-- {
		sum := b.AtVec(i)
		for j := i + 1; j < n; j++ {
			sum -= a.At(i, j) * x.AtVec(j)
		}
		x.SetVec(i, sum/a.At(i, i))
	}
	return x, nil
}
