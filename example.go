/*
 * a basic example for ofpact usage: decode a hex-encoded OpenFlow v1.0
 * action list from stdin and print its canonical text and JSON forms
 */
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fraant/ofpact/ofpact"
)

var optJSON = flag.Bool("json", false, "also print the diagnostic JSON rendering")

func main() {
	flag.Parse()
	fmt.Printf("ofpactdump: paste hex-encoded OpenFlow v1.0 action bytes, one list per line\n")

	c := ofpact.New(ofpact.DefaultOptions())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		raw, err := hex.DecodeString(line)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}

		var list ofpact.Actlist
		if err := c.ParseActionsV10(raw, len(raw), &list); err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}

		fmt.Printf("%s\n", c.Format(&list, nil))
		if *optJSON {
			fmt.Printf("%s\n", c.ToJSON(&list, nil))
		}
	}
}
