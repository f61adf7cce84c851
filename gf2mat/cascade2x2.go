package gf2mat

// schedule2x2 is Strassen's 7-multiply schedule for a 2x2 block
// decomposition, specialized to GF(2) (subtraction is addition, so every
// "-" in the textbook formulas below becomes XOR, same as "+"):
//
//	M1 = (A0+A3)(B0+B3)   M2 = (A2+A3)B0        M3 = A0(B1+B3)
//	M4 = A3(B2+B0)        M5 = (A0+A1)B3        M6 = (A2+A0)(B0+B1)
//	M7 = (A1+A3)(B2+B3)
//
//	C0 = M1+M4+M5+M7   C1 = M3+M5   C2 = M2+M4   C3 = M1+M2+M3+M6
//
// M6 and M7 each feed exactly one output block, so they are accumulated
// straight into it. The other five feed two output blocks each, so they
// are materialized once into scratchMN and then added into both.
func schedule2x2(c [][]WindowMut, a, b [][]Window, scratchMK, scratchMN, scratchKN WindowMut, algos []AlgoDescriptor) {
	A0, A1, A2, A3 := a[0][0], a[0][1], a[1][0], a[1][1]
	B0, B1, B2, B3 := b[0][0], b[0][1], b[1][0], b[1][1]
	C0, C1, C2, C3 := c[0][0], c[0][1], c[1][0], c[1][1]

	// M6 -> C3 only
	scratchMK.SetToSum(A2, A0)
	scratchKN.SetToSum(B0, B1)
	addmulRecurse(C3, scratchMK, scratchKN, algos)

	// M7 -> C0 only
	scratchMK.SetToSum(A1, A3)
	scratchKN.SetToSum(B2, B3)
	addmulRecurse(C0, scratchMK, scratchKN, algos)

	// M1 -> C0, C3
	scratchMK.SetToSum(A0, A3)
	scratchKN.SetToSum(B0, B3)
	scratchMN.Clear()
	addmulRecurse(scratchMN, scratchMK, scratchKN, algos)
	C0.Add(scratchMN)
	C3.Add(scratchMN)

	// M2 -> C2, C3
	scratchMK.SetToSum(A2, A3)
	scratchMN.Clear()
	addmulRecurse(scratchMN, scratchMK, B0, algos)
	C2.Add(scratchMN)
	C3.Add(scratchMN)

	// M3 -> C1, C3
	scratchKN.SetToSum(B1, B3)
	scratchMN.Clear()
	addmulRecurse(scratchMN, A0, scratchKN, algos)
	C1.Add(scratchMN)
	C3.Add(scratchMN)

	// M4 -> C0, C2
	scratchKN.SetToSum(B2, B0)
	scratchMN.Clear()
	addmulRecurse(scratchMN, A3, scratchKN, algos)
	C0.Add(scratchMN)
	C2.Add(scratchMN)

	// M5 -> C0, C1
	scratchMK.SetToSum(A0, A1)
	scratchMN.Clear()
	addmulRecurse(scratchMN, scratchMK, B3, algos)
	C0.Add(scratchMN)
	C1.Add(scratchMN)
}
