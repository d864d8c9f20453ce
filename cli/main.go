package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/maxsid/memberful-login/memberful"
)

func handleError(err error, message string) {
	if message == "" {
		message = "Error making API call"
	}
	if err != nil {
		log.Fatalf(message+": %v", err.Error())
	}
}

func Run(configDir string, client authClient, serv memberful.Service) {
	tok, err := ensureToken(context.TODO(), client, configDir)
	handleError(err, "Unable to sign in")

	member, err := serv.CurrentMember(context.TODO(), tok)
	if errors.Is(err, memberful.ErrUnauthorized) {
		// token revoked upstream, one refresh-and-retry
		tok, err = refreshCached(context.TODO(), client, configDir, tok)
		handleError(err, "Unable to refresh the access token, sign in again")
		member, err = serv.CurrentMember(context.TODO(), tok)
	}
	handleError(err, "Unable to fetch the member profile")

	printMember(member)
}

func printMember(member *memberful.Member) {
	log.Printf("Signed in as %s <%s> (member #%s)", member.FullName, member.Email, member.ID)
	if len(member.Subscriptions) == 0 {
		log.Printf("No subscriptions")
		return
	}
	for _, sub := range member.Subscriptions {
		status := "inactive"
		if sub.Active {
			status = "active"
		}
		expires := "never expires"
		if sub.ExpiresAt != nil {
			expires = fmt.Sprintf("expires %s", sub.ExpiresAt.Format("2 January 2006"))
		}
		log.Printf("Plan %s (id: %s): %s, %s", sub.Plan.Name, sub.Plan.ID, status, expires)
	}
}
