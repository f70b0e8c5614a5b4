// Command lifelist imports an eBird observation export into a deduplicated
// life list and answers questions about it.
//
//	lifelist import MyEBirdData.csv
//	lifelist show --limit 20
//	lifelist has Turdus migratorius
//
// Configuration is read from ~/.config/lifelist/config.toml or ./lifelist.toml;
// run `lifelist config init` to create one.
package main
