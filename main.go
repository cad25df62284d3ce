package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ccfrost/albumup/albumupconfig"
	"github.com/ccfrost/albumup/commands"
	"github.com/ccfrost/albumup/commands/googlephotos"
)

const albumup = "albumup"

func main() {
	var configPath string
	var config albumupconfig.AlbumupConfig

	var albumTitle string
	var directory string
	var credentialsPath string
	var recursive bool

	rootCmd := cobra.Command{
		Use:   albumup,
		Short: "Upload a directory of files into a Google Photos album",
		Long: `Upload the files of a local directory into the named Google Photos album.
The album is created if it does not exist. A pre-existing album is only used
if it was created by this application; otherwise pick a different name.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			config, err = albumupconfig.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if credentialsPath != "" {
				config.CredentialsPath = credentialsPath
			}
			if err := config.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			configDir := filepath.Dir(config.ConfigPath())
			httpClient, err := commands.GetAuthenticatedGooglePhotosClient(ctx, config.CredentialsPath, configDir, commands.ConsolePrompter{})
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			gphotosClient := commands.NewGPhotosClient(googlephotos.NewClient(httpClient))

			report, err := commands.Upload(ctx, config, albumTitle, directory, recursive, gphotosClient)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}

			for _, failure := range report.Failures {
				fmt.Fprintf(os.Stderr, "failed: %s: %v\n", failure.Path, failure.Err)
			}
			fmt.Printf("uploaded %d files to '%s' (%d failed)\n", report.Uploaded, report.AlbumTitle, report.Failed())
			if report.Uploaded == 0 && report.Failed() > 0 {
				os.Exit(1)
			}
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the configuration file")
	rootCmd.Flags().StringVarP(&albumTitle, "album", "a", "", "Google Photos album to upload into")
	rootCmd.Flags().StringVarP(&directory, "directory", "d", "", "Directory to look for files to upload")
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Include files in subdirectories")
	rootCmd.Flags().StringVar(&credentialsPath, "credentials", "", "Path to the Google Photos API credentials file (defaults to ./credentials.json)")
	_ = rootCmd.MarkFlagRequired("album")
	_ = rootCmd.MarkFlagRequired("directory")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
