// Command rsdemo encodes a short message, corrupts a few symbols, and
// decodes it back, printing each stage. It exists outside the rs32 package
// itself since the library has no business doing I/O.
package main

import (
	"fmt"
	"os"

	"github.com/DaGenix/reed-solomon-32"
)

func main() {
	data := []byte{3, 1, 4, 1, 5, 9, 2, 6}
	const ecc = 6

	encoded, err := rs32.Encode(data, ecc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}
	fmt.Printf("data:    %v\n", encoded.Data())
	fmt.Printf("ecc:     %v\n", encoded.ECC())

	corrupted := append([]byte{}, encoded.Bytes()...)
	corrupted[1] ^= 0x1f
	corrupted[5] ^= 0x0a
	corrupted[9] ^= 0x03
	fmt.Printf("corrupt: %v\n", corrupted)

	corrected, fixed, err := rs32.CorrectErrCount(corrupted, ecc, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "correct:", err)
		os.Exit(1)
	}
	fmt.Printf("fixed %d symbol(s); recovered data: %v\n", fixed, corrected.Data())
}
