package config

const (
	KeyTemplatesDir   = "templates_dir"
	KeyBaseBranch     = "base_branch"
	KeyMaxDiffLines   = "max_diff_lines"
	KeyGitTimeout     = "git_timeout"
	KeyWorkspaceRoots = "workspace_roots"
	KeyLogLevel       = "log_level"
	KeyTransport      = "transport"
	KeyHost           = "host"
	KeyPort           = "port"
)
