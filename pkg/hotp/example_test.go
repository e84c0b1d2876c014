package hotp_test

import (
	"fmt"

	"github.com/jhahn/go-totp/pkg/hotp"
)

func ExampleGenerate() {
	key := []byte("12345678901234567890")

	for counter := uint64(0); counter < 3; counter++ {
		fmt.Println(hotp.Generate(key, counter, hotp.DefaultDigits))
	}
	// Output:
	// 755224
	// 287082
	// 359152
}

func ExampleGenerate_width() {
	key := []byte("12345678901234567890")

	fmt.Println(hotp.Generate(key, 0, 8))
	// Output:
	// 84755224
}
