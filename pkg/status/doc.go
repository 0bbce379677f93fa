/*
Package status manages file access and per-file status for datefix.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +-----+-----+
	|   Files   |           |  Status   |
	| (on disk) |           |  (enum)   |
	+-----------+           +-----------+

🎯 Purpose:
- Resolves plan paths against the project root
- Reads files and overwrites them in place
- Names the outcome of processing one file

📝 Writes are plain overwrites that keep the file mode. There is no temp
file and rename; the tool is meant to run over version controlled sources.
*/
package status
