// Command ilsconv inspects and converts ILS payloads using the record
// schemas of package ils.
//
// Usage:
//
//	ilsconv sniff -i response.xml
//	ilsconv convert --record patron --to json -i response.xml
//	ilsconv schema --record availability --format xml
//
// Flags can also be set through ILSCONV_* environment variables, read from
// .env and .env.local when present.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
