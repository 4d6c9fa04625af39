package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/typeshape/graphql-tsgen/generator"
)

var configPath string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of graphql-tsgen",
	Run: func(cmd *cobra.Command, args []string) {
		println("graphql-tsgen v0.1.0")
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new graphql-tsgen project",
	Run: func(cmd *cobra.Command, args []string) {
		if err := generator.Init("."); err != nil {
			log.Fatal(err)
		}
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate TypeScript declarations from the configured schema and operations",
	Run: func(cmd *cobra.Command, args []string) {
		opt, baseDir, err := generator.LoadOption(configPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := generator.New(baseDir, opt).Generate(); err != nil {
			log.Fatal(err)
		}
	},
}

func main() {
	generateCmd.Flags().StringVarP(&configPath, "config", "c", "graphql-tsgen.yaml", "path to the config file")

	rootCmd := cobra.Command{}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(generateCmd)

	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
