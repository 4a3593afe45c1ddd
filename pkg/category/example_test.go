// Copyright 2025 walteh LLC
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

package category_test

import (
	"fmt"

	"github.com/walteh/sortrc/pkg/category"
)

func ExampleTable_Classify() {
	table := category.DefaultTable()

	for _, name := range []string{"photo.JPG", "archive.tar.gz", "script.xyz", "notes"} {
		ext := category.Extension(name)
		if ext == "" {
			fmt.Printf("%s stays put\n", name)
			continue
		}
		dest, _ := table.Classify(ext)
		fmt.Printf("%s -> %s/\n", name, dest)
	}

	// Output:
	// photo.JPG -> Images/
	// archive.tar.gz -> Archives/
	// script.xyz -> Other/
	// notes stays put
}
