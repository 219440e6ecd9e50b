package normstr_test

import (
	"fmt"

	"github.com/jdn-utils/jdnutils/pkg/normstr"
)

func ExampleDefaultVerify() {
	id, err := normstr.DefaultVerify("asdf", "User ID")
	fmt.Println(id, err)

	_, err = normstr.DefaultVerify("asdf;zxcv", "User ID")
	fmt.Println(err)
	// Output:
	// asdf <nil>
	// User ID cannot contain ';'
}

func ExampleVerify() {
	_, err := normstr.Verify("", "Hostname", 63, ".")
	fmt.Println(err)
	// Output: Hostname cannot be empty
}
