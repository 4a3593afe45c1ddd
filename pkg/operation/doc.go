/*
Package operation implements the sorter: one pass over the direct children of a
target directory, moving each file into a folder named after its category.

	+-------------+
	|   ReadDir   |
	|  (target)   |
	+------+------+
	       |
	+------+------+
	|   decide    |
	| (classify)  |
	+------+------+
	       |
	+------+------+
	|    apply    |
	| (mkdir/mv)  |
	+-------------+

🔄 Flow:
1. Check the target exists and is a directory; nothing is touched otherwise
2. List the direct children once
3. Directories are skipped and never entered
4. Files without an extension, or matching an ignore pattern, stay in place
5. Everything else goes to the first category listing its extension, or to
   the fallback folder

⚠️ Failure:
The first failed mkdir or move stops the run. There is no rollback; files moved
before the failure stay in their new folder.

🔍 Example:

	s, err := operation.New(operation.Options{
		FS:    fsys.NewOS(),
		Table: category.DefaultTable(),
	})
	report, err := s.Sort(ctx, "/home/me/Downloads")
*/
package operation
