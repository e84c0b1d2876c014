package totp_test

import (
	"fmt"
	"log"

	"github.com/jhahn/go-totp/pkg/totp"
)

func ExampleCode() {
	code, err := totp.Code("TKI3J4MD6HBVVLAB")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Code derived: %v\n", len(code) == 6)
	// Output: Code derived: true
}

func ExampleCodeAt() {
	code, err := totp.CodeAt("TKI3J4MD6HBVVLAB", 1578082942)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(code)
	// Output: 075767
}

func ExampleBeginPeriodAt() {
	fmt.Println(totp.BeginPeriodAt(1578082942))
	// Output: 52602764
}

func ExampleEndPeriodAt() {
	fmt.Println(totp.EndPeriodAt(1578082942))
	// Output: 52602794
}
