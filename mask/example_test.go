// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build !integration

package mask_test

import (
	"fmt"

	"rivaas.dev/logmask/mask"
)

// ExampleFromProperties applies the rule strings shown in the package
// documentation.
func ExampleFromProperties() {
	e := mask.FromProperties(map[string]string{
		"mask.0": `\b(\d{16})\b->partial-keep-suffix(4)`,
		"mask.1": `(?i)bearer\s+(\S+)->full([token])`,
		"mask.2": `s3cr3t->literal`,
	}, func(err error) { fmt.Println(err) })

	fmt.Println(e.Mask("card 4111111111111111 ok"))
	fmt.Println(e.Mask("Authorization: Bearer abc.def"))
	fmt.Println(e.Mask("pw s3cr3t"))
	// Output:
	// card ************1111 ok
	// Authorization: Bearer [token]
	// pw ****
}

// ExampleFromProperties_structured decodes the flattened form of a YAML
// rule list.
func ExampleFromProperties_structured() {
	e := mask.FromProperties(map[string]string{
		"mask.0.pattern": `password=(\S+)`,
		"mask.0.mode":    "full",
		"mask.1.pattern": `\b(\d{16})\b`,
		"mask.1.mode":    "partial-keep-suffix",
		"mask.1.keep":    "4",
	}, nil)

	for _, r := range e.Rules() {
		fmt.Println(r)
	}
	fmt.Println(e.Mask("full backup done password=hunter2 card 4111111111111111"))
	// Output:
	// password=(\S+)->full(****)
	// \b(\d{16})\b->partial-keep-suffix(4,*)
	// full backup done password=**** card ************1111
}

// ExampleRule_Apply masks only the captured value.
func ExampleRule_Apply() {
	r, err := mask.NewFullRule(`password=(\S+)`, "")
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Apply("login password=hunter2 ok"))
	// Output: login password=**** ok
}
