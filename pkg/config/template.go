package config

import "bytes"

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full documents every field with its default value written out.
	// If false, generates a minimal template with most fields
	// commented out.
	Full bool
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) []byte {
	if opts.Full {
		return generateFullTemplate()
	}
	return generateMinimalTemplate()
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# gofasta configuration
# See: https://github.com/yaklabco/gofasta

# File extensions discovered as FASTA (each also matches its .gz double)
# extensions:
#   - .fasta
#   - .fa
#   - .fna
#   - .faa
#   - .fas

# File patterns to ignore (glob patterns, ** crosses directories)
# ignore:
#   - "raw/**"
#   - "**/*.tmp.fasta"

# Number of parallel workers (0 = one per CPU)
# jobs: 0

# Output format: text, table, or json
# format: text

# Styled output: auto, always, or never
# color: auto

# Input encoding as an IANA charset name (empty = UTF-8)
# charset: ""

# Sniff file content when the extension is not listed above
# detect: false
`)

	return buf.Bytes()
}

// generateFullTemplate creates a template with every field spelled out
// at its default value.
func generateFullTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# gofasta configuration - Full Template
# See: https://github.com/yaklabco/gofasta
#
# Every field is listed with its default value. Adjust as needed.

# File extensions discovered as FASTA (each also matches its .gz double)
extensions:
  - .fasta
  - .fa
  - .fna
  - .faa
  - .fas

# File patterns to ignore (glob patterns, ** crosses directories)
ignore: []

# Number of parallel workers (0 = one per CPU)
jobs: 0

# Output format: text, table, or json
format: text

# Styled output: auto, always, or never
color: auto

# Input encoding as an IANA charset name (empty = UTF-8)
charset: ""

# Sniff file content when the extension is not listed above
detect: false
`)

	return buf.Bytes()
}
