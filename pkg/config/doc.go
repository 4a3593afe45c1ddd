/*
Package config loads the optional sortrc configuration file.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	   +-------+-------+-------+-------+
	   |       |               |       |
	+--+--+ +--+--+        +---+--+ +--+---+
	| YAML| | JSON|        | TOML | | HCL  |
	+-----+ +-----+        +------+ +------+

🎯 Purpose:
- Describe the target directory, the category table, the fallback folder and
  glob patterns for files to leave alone
- Fall back to the built-in table when nothing is configured

🔄 Flow:
1. Pick a parser from the file extension
2. Decode, rejecting unknown fields
3. Fill defaults, expand "~" and resolve a relative target against the
   config file's directory
4. Validate the resulting category table

📝 Schema:
YAML, JSON and TOML use a "categories" list of {name, extensions} entries.
HCL uses block syntax instead, one labelled `category "Name" { ... }` block per
category. A relative "target" is resolved against the directory holding the
config file, not the working directory.

Category order in the file is classification order: the first category that
lists an extension wins.
*/
package config
