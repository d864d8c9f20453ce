package cmd

import (
	"fmt"

	"github.com/maxsid/memberful-login/memberful/auth"
	"github.com/maxsid/memberful-login/memberful/service"
	"github.com/maxsid/memberful-login/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	serverAddress = ":8080"
)

var serverCMD = &cobra.Command{
	Use:   "server",
	Short: "Run web server",
	Run: func(cmd *cobra.Command, args []string) {
		cred, err := auth.LoadCredentialFromFile(credentialPath)
		if err != nil {
			panic(err)
		}
		addr := listenAddress(cmd.Flags().Changed("addr"))
		server.Run(addr, auth.NewClient(cred), service.NewMemberService(cred.APIURL))
	},
}

func initServerFlags() {
	serverCMD.PersistentFlags().StringVar(&serverAddress, "addr", serverAddress, "Server listening address")
}

// listenAddress returns the --addr flag value, unless the flag was left at its
// default and a PORT environment variable is set (the usual PaaS contract).
func listenAddress(addrFlagChanged bool) string {
	if addrFlagChanged {
		return serverAddress
	}
	if port := viper.GetString("port"); port != "" {
		return fmt.Sprintf(":%s", port)
	}
	return serverAddress
}
