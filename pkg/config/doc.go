/*
Package config loads and saves the version store of a generation run.

	            +-------------+
	            |    Store    |
	            | (Sections)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|    INI    | |  YAML   | |    HCL    |
	|  Parser   | | Parser  | |  Parser   |
	+-----------+ +---------+ +-----------+

🎯 Purpose:
- Resolves the client version per target language
- Records the backend tag a run was generated from
- Bumps versions and writes them back in the source format

🔄 Flow:
1. Picks a parser by file extension
2. Parses the file into named sections
3. Answers Version lookups for the rule builders
4. Encodes changed sections over the original bytes on Save

🤝 Interfaces:
- Parser: Format-specific parsing and encoding
- Store: Section access, version lookup, bumping

🔍 Example:

	store, err := config.Load(ctx, ".generation/config.ini")
	if err != nil {
		return err
	}

	v, err := store.Version("python")
	if errors.Is(err, config.ErrUnknownLanguage) {
		// the run cannot stamp a user agent
		return err
	}
*/
package config
