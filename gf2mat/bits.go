package gf2mat

import "encoding/binary"

// xorInto computes dst[i] ^= src[i] for every byte. Both slices must have
// the same length and must not alias. This is the hot inner loop every
// multiplication kernel funnels through. It XORs 8 bytes at a time as
// little-endian uint64 words, and a byte loop handles any remaining tail.
// The kernels always pass rows whose length is a multiple of an alignment
// constant (Align or WindowAlign), so for them the tail loop does no work.
func xorInto(dst, src []byte) {
	n := len(dst)
	i := 0
	for ; i+8 <= n; i += 8 {
		d := binary.LittleEndian.Uint64(dst[i : i+8])
		s := binary.LittleEndian.Uint64(src[i : i+8])
		binary.LittleEndian.PutUint64(dst[i:i+8], d^s)
	}
	for ; i < n; i++ {
		dst[i] ^= src[i]
	}
}

// xorThree computes dst[i] = s1[i] ^ s2[i]. dst must not alias s1 or s2;
// s1 and s2 may alias each other. Same length preconditions as xorInto.
func xorThree(dst, s1, s2 []byte) {
	n := len(dst)
	i := 0
	for ; i+8 <= n; i += 8 {
		a := binary.LittleEndian.Uint64(s1[i : i+8])
		b := binary.LittleEndian.Uint64(s2[i : i+8])
		binary.LittleEndian.PutUint64(dst[i:i+8], a^b)
	}
	for ; i < n; i++ {
		dst[i] = s1[i] ^ s2[i]
	}
}
