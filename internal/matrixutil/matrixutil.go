// Package matrixutil provides the modular linear algebra the Hill
// cipher needs: determinants and inverses of 2x2/3x3 integer matrices
// mod 26, and a scalar extended-Euclidean modular inverse.
package matrixutil

import "fmt"

// Modulus is the size of the Latin alphabet every cipher in this
// module operates over.
const Modulus = 26

// Determinant computes the determinant of a 2x2 or 3x3 integer
// matrix. It fails for any other order.
func Determinant(m [][]int) (int, error) {
	n := len(m)
	switch n {
	case 2:
		return m[0][0]*m[1][1] - m[0][1]*m[1][0], nil
	case 3:
		a, b, c := m[0][0], m[0][1], m[0][2]
		d, e, f := m[1][0], m[1][1], m[1][2]
		g, h, i := m[2][0], m[2][1], m[2][2]
		return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g), nil
	default:
		return 0, fmt.Errorf("unsupported matrix order %d: only 2x2 and 3x3 are supported", n)
	}
}

// ModInverse returns the unique x in [0,m) with a*x ≡ 1 (mod m), via
// the extended Euclidean algorithm. ok is false when gcd(a,m) != 1.
func ModInverse(a, m int) (x int, ok bool) {
	g, x1, _ := extendedGCD(((a%m)+m)%m, m)
	if g != 1 {
		return 0, false
	}
	return ((x1 % m) + m) % m, true
}

// extendedGCD returns gcd(a,b) and (x,y) such that a*x + b*y = gcd(a,b).
func extendedGCD(a, b int) (gcd, x, y int) {
	if a == 0 {
		return b, 0, 1
	}
	g, x1, y1 := extendedGCD(b%a, a)
	return g, y1 - (b/a)*x1, x1
}

// InverseMod26 computes the modular inverse (mod 26) of a 2x2 or 3x3
// integer matrix: it requires gcd(det,26)=1, builds the adjugate
// (2x2 swap-and-negate; 3x3 cofactor-transpose), and scales by the
// modular inverse of the determinant.
func InverseMod26(m [][]int) ([][]int, error) {
	n := len(m)
	det, err := Determinant(m)
	if err != nil {
		return nil, err
	}
	detInv, ok := ModInverse(((det%Modulus)+Modulus)%Modulus, Modulus)
	if !ok {
		return nil, fmt.Errorf("matrix has no modular inverse: det=%d shares a factor with %d", det, Modulus)
	}

	var adj [][]int
	switch n {
	case 2:
		adj = [][]int{
			{m[1][1], -m[0][1]},
			{-m[1][0], m[0][0]},
		}
	case 3:
		cof := make([][]int, 3)
		for i := range cof {
			cof[i] = make([]int, 3)
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				minor := minor3(m, i, j)
				d, _ := Determinant(minor)
				sign := 1
				if (i+j)%2 != 0 {
					sign = -1
				}
				cof[i][j] = sign * d
			}
		}
		adj = transpose(cof)
	default:
		return nil, fmt.Errorf("unsupported matrix order %d: only 2x2 and 3x3 are supported", n)
	}

	inv := make([][]int, n)
	for i := 0; i < n; i++ {
		inv[i] = make([]int, n)
		for j := 0; j < n; j++ {
			v := (adj[i][j] * detInv) % Modulus
			if v < 0 {
				v += Modulus
			}
			inv[i][j] = v
		}
	}
	return inv, nil
}

func minor3(m [][]int, skipRow, skipCol int) [][]int {
	out := make([][]int, 0, 2)
	for i := 0; i < 3; i++ {
		if i == skipRow {
			continue
		}
		row := make([]int, 0, 2)
		for j := 0; j < 3; j++ {
			if j == skipCol {
				continue
			}
			row = append(row, m[i][j])
		}
		out = append(out, row)
	}
	return out
}

func transpose(m [][]int) [][]int {
	n := len(m)
	out := make([][]int, n)
	for i := range out {
		out[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[j][i] = m[i][j]
		}
	}
	return out
}

// MultiplyVector computes m*v (matrix-vector product), mod Modulus.
func MultiplyVector(m [][]int, v []int) []int {
	n := len(m)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		sum := 0
		for k := 0; k < n; k++ {
			sum += m[i][k] * v[k]
		}
		out[i] = ((sum % Modulus) + Modulus) % Modulus
	}
	return out
}
