package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" //  tag
	IconGitBranch = "\ue725" //  git branch
	IconCalendar  = "\uf073" //  calendar
	IconGithub    = "\uf09b" //  github
	IconHeart     = "\uf004" //  heart
	IconGo        = "\ue627" //  go gopher

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config

	IconCursor = "\uf054" // chevron-right

	// Layout preview
	IconScreen   = "\uf108" // desktop
	IconWindow   = "\uf2d2" // window
	IconLayout   = "\uf0db" // columns
	IconTag      = "\uf02c" // tags
	IconFloating = "\uf24d" // clone/stack
)
