package cmd

import (
	"github.com/maxsid/memberful-login/cli"
	"github.com/maxsid/memberful-login/memberful/auth"
	"github.com/maxsid/memberful-login/memberful/service"
	"github.com/spf13/cobra"
)

var cliCMD = &cobra.Command{
	Use:   "cli",
	Short: "Run program in CLI mode.",
	Run: func(cmd *cobra.Command, args []string) {
		cred, err := auth.LoadCredentialFromFile(credentialPath)
		if err != nil {
			panic(err)
		}
		configDir, err := getConfigDirectory()
		if err != nil {
			panic(err)
		}
		cli.Run(configDir, auth.NewClient(cred), service.NewMemberService(cred.APIURL))
	},
}
