// MD5 in Go

package main

import (
	stdmd5 "crypto/md5"
	"fmt"

	"github.com/sdatko/MD5Py/md5"
)

func main() {
	data := []byte("This page intentionally left blank.")
	fmt.Printf("%x\n", md5.Sum(data))
	fmt.Printf("%x\n", stdmd5.Sum(data))
	fmt.Println()

	data = []byte("-------------------------------------------------------+")
	fmt.Printf("%x\n", md5.Sum(data))
	fmt.Printf("%x\n", stdmd5.Sum(data))
	fmt.Println()

	data = []byte("----------------------------------------------------------------+---------------------------------------------------------------+")
	fmt.Printf("%x\n", md5.Sum(data))
	fmt.Printf("%x\n", stdmd5.Sum(data))
	fmt.Println()

	data = []byte("")
	fmt.Printf("%x\n", md5.Sum(data))
	fmt.Printf("%x\n", stdmd5.Sum(data))
}
