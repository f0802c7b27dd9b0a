/*
Package config implements TOML config file handling for the ftlentries tool.

Normally it will be used by simply passing a config file name to the Load function to obtain a
Config struct. Values that are not present in the file keep the defaults returned by Default, and
command line flags are applied on top by the cli package.
*/
package config
