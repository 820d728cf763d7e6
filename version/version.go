package version

// BuildVersion is set at build time: -ldflags "-X github.com/clambin/ledglow/version.BuildVersion=<version>"
var BuildVersion = "change-me"
