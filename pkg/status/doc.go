/*
Package status tracks what a patch run did to each file and writes files safely.

	            +-------------+
	            |   Status    |
	            | (Outcomes)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           |  Logs   |
	| (Atomic)  |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Reads target files and replaces them through temp file + rename
- Tracks the outcome per file (patched, pending, unchanged, skipped, failed)
- Warns about corrections whose trigger was not found
- Formats progress, outcomes and run totals

🔄 Flow:
1. The driver reads a file with ReadFile
2. The transformed content goes to WriteFileAtomic
3. The outcome is handed to a Reporter
4. The CLI prints the Summary

🤝 Interfaces:
- Reporter: Tracks outcomes and progress
- FileFormatter: Formats status messages

🚧 Current Issues & TODOs:
1. Progress Reporting:
  - Progress is only logged at debug level; batch runs over large
    client trees could use a pterm progress bar

🔍 Example:

	mgr := status.New()

	mgr.StartOperation(ctx, len(files))
	for i, f := range files {
		mgr.TrackFile(ctx, status.FileInfo{Path: f, Status: status.StatusPatched})
		mgr.UpdateProgress(ctx, i+1)
	}
	mgr.FinishOperation(ctx)

	fmt.Println(status.NewDefaultFileFormatter().FormatSummary(mgr.Summary(ctx)))
*/
package status
