/*
Package config manages the migration plan for datefix.

	            +-------------+
	            |    Plan     |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+-----------+
	      |            |           |
	+-----+----+ +-----+----+ +----+----+
	|   YAML   | |   JSON   | |   HCL   |
	|  Parser  | |  Parser  | | Parser  |
	+----------+ +----------+ +---------+

🎯 Purpose:
- Holds the built-in plan (locale, helper, ordered file list)
- Loads an optional plan file and fills gaps from the built-in plan
- Expands glob entries of the file list against the project root

🔄 Flow:
1. Load returns Default() when no plan file is given
2. Otherwise the parser is picked by extension and the plan decoded
3. SetDefaults fills unset fields, Validate rejects broken plans
4. Expand turns the files list into concrete relative paths

🔍 Example:

	plan, err := config.Load(ctx, "datefix.hcl")
	if err != nil {
		return err
	}
	files, err := plan.Expand(ctx, ".")
*/
package config
