package shell

func usage() string {
	return `commands:
load [path] - load a word list, one word per line (default from config)
create [n] - create a puzzle with n scrambled words; n defaults to word-count
solve <word> - unscramble a jumbled word against the loaded list
crossword <pattern> - solve a pattern with ? for unknown letters, e.g. c?m?l
lengths - show the current length rules
lengths allow <n,...> - only use words of the given lengths
lengths deny <n,...> - never use words of the given lengths
lengths clear - remove all length rules
pool - show how many words are eligible for puzzles
exit - quit`
}
