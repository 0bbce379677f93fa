/*
Package operation implements the date display migration.

	+-------------+
	|  Migrator   |
	| (Core Loop) |
	+------+------+
	       |
	+------+------+      +-------------+
	|   rewrite   | ---> |   imports   |
	| (call sites)|      | (injector)  |
	+-------------+      +-------------+

🎯 Purpose:
- Walks the plan's files in order, one at a time
- Rewrites `new Date(x).toLocaleDateString('pt-BR')` call sites
- Makes the helper importable in every file it touched
- Reports each file and the run total

🔄 Flow:
1. Expand the plan's files against the root
2. Skip files that do not exist, reporting them
3. Scan for call sites; files without any are left alone
4. Ensure the helper import on the content as found, then rewrite
5. Overwrite the file (or keep the diff when running dry)

📝 A file either keeps its exact content or ends with every call site
replaced and the helper imported. Read and write failures stop the run.

🔍 Example:

	m, err := operation.New(operation.Options{Plan: plan, Root: ".", Logger: logger})
	if err != nil {
		return err
	}
	summary, err := m.Run(ctx)
*/
package operation
