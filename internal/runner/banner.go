package runner

import "github.com/projectdiscovery/gologger"

const banner = `
  ____ __________  ____ ___  ____  ____  (_) /_
 / __ '/ ___/ __ \/ __ '__ \/ __ \/ __ \/ / __/
/ /_/ / /  / /_/ / / / / / / /_/ / / / / / /_
\__,_/_/  / .___/_/ /_/ /_/\____/_/ /_/_/\__/
         /_/
`

const version = "v1.0.0"

// showBanner prints the project banner to the screen
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
}
