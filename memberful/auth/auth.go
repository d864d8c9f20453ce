package auth

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/maxsid/memberful-login/memberful/helper"
)

// credentialFile is the JSON credential file from the Memberful OAuth
// application settings.
type credentialFile struct {
	Site         string `json:"site"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURL  string `json:"redirect_url"`
}

type LoaderCredentialFromJSON interface {
	CredentialFromJSON(jsonKey []byte) (*Credentials, error)
}

type jsonCredentialLoader struct{}

// CredentialFromJSON parses the credential file content and derives the
// provider endpoints from the membership site address.
func (j jsonCredentialLoader) CredentialFromJSON(jsonKey []byte) (*Credentials, error) {
	var file credentialFile
	if err := json.Unmarshal(jsonKey, &file); err != nil {
		return nil, err
	}
	site, err := helper.MemberfulSiteFromURL(file.Site)
	if err != nil {
		return nil, err
	}
	if file.ClientID == "" || file.ClientSecret == "" || file.RedirectURL == "" {
		return nil, fmt.Errorf("credential file must set client_id, client_secret and redirect_url")
	}
	base := fmt.Sprintf("https://%s.memberful.com", site)
	return &Credentials{
		AuthURL:      fmt.Sprintf("%s/oauth", base),
		TokenURL:     fmt.Sprintf("%s/oauth/token", base),
		APIURL:       fmt.Sprintf("%s/api/graphql", base),
		ClientID:     file.ClientID,
		ClientSecret: file.ClientSecret,
		RedirectURL:  file.RedirectURL,
	}, nil
}

// LoadCredentialFromFile reads a JSON credential file by the path and returns Credentials.
func LoadCredentialFromFile(path string) (*Credentials, error) {
	return loadCredentialFromFile(path, &jsonCredentialLoader{})
}

// loadCredentialFromFile reads a credential client secret from a file by the path via LoaderCredentialFromJSON.
func loadCredentialFromFile(path string, loader LoaderCredentialFromJSON) (*Credentials, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	secretBytes, err := ioutil.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return loader.CredentialFromJSON(secretBytes)
}
