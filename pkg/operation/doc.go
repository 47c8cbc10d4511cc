/*
Package operation drives rule sets over files on disk.

	+-------------+
	|  Operation  |
	| (Driver)    |
	+------+------+
	       |
	+------+------+
	|   Rewrite   |
	| (Transform) |
	+------+------+

🎯 Purpose:
- Reads a generated file into lines
- Runs the selected transform over them
- Replaces the file only when the content changed

🔄 Flow:
1. Select the rule set for the file name (versions resolve here)
2. Read the file through the status package
3. Transform the lines
4. Write through a temp file and rename
5. Audit which triggers were not found

⚡ Key Responsibilities:
- Whole-file replacement, never partial writes
- Dry runs and line diffs
- Sequential batch runs over a client tree

🤝 Interfaces:
- Selector: Chooses the rule set for a path
- status.Reporter: Receives per-file outcomes

🔍 Example:

	sel := operation.FixesSelector(store)

	res, err := operation.Patch(ctx, "client/python/geoengine_openapi_client/api_client.py", sel, operation.Options{})
	if err != nil {
		return err
	}
	fmt.Print(res.Diff())

	results, err := operation.Batch(ctx, "client", sel, operation.BatchOptions{
		Patterns: operation.DefaultPatterns,
		Reporter: status.New(),
	})

The package should stay a pure pipeline:
Input (file) -> Transform -> Output (file)
*/
package operation
