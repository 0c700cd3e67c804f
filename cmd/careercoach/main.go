// Command careercoach runs the career-coaching HTTP API.
//
//	@title						Career Coach API
//	@version					1.0
//	@description				AI-assisted career guidance: skills, gap analysis, job matching, learning paths, resumes and chat.
//	@BasePath					/api
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						session
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "careercoach",
	Short: "Career coaching API server",
	Long: `careercoach serves the career-coaching REST API: accounts, skills and
gap analysis, AI career and job recommendations, learning paths, resumes,
chat, business-idea evaluation and market data.

Configuration is read from the environment; a .env file in the working
directory is loaded first when present.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, sweepCmd, versionCmd)
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not load .env")
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
