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

package commands

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/sortrc/cmd/sortrc/opts"
	"gitlab.com/tozd/go/errors"
)

// NewCategoriesCmd creates a new categories command
func NewCategoriesCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Print the active category table",
		Long: `Categories prints the destination folders in classification order.
An extension listed by several categories goes to the first one; such
overlaps are reported as warnings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := opts.Config.Table()
			out := cmd.OutOrStdout()

			data := pterm.TableData{{"#", "Folder", "Extensions"}}
			for i, c := range table.Categories {
				data = append(data, []string{strconv.Itoa(i + 1), c.Name, strings.Join(c.Extensions, " ")})
			}
			data = append(data, []string{"", table.Fallback, "(everything else)"})

			if err := pterm.DefaultTable.WithHasHeader().WithWriter(out).WithData(data).Render(); err != nil {
				return errors.Errorf("rendering table: %w", err)
			}

			for _, o := range table.Overlaps() {
				pterm.Warning.WithWriter(out).Println("overlapping extension " + o.String())
			}

			return nil
		},
	}

	return cmd
}
