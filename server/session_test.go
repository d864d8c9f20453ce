package server

import (
	"io"
	"testing"

	"github.com/go-test/deep"
	"github.com/maxsid/memberful-login/memberful/auth"
)

func Test_getSessionToken(t *testing.T) {
	token := &auth.Token{AccessToken: "AT1", RefreshToken: "RT1"}

	tests := []struct {
		name    string
		sess    sessionRecordGetter
		want    *auth.Token
		wantErr bool
	}{
		{
			name: "OK",
			sess: newSessionMock(map[string]interface{}{sessionKeyOfMemberToken: token}),
			want: token,
		},
		{
			name:    "Error no token",
			sess:    newSessionMock(nil),
			wantErr: true,
		},
		{
			name:    "Error invalid token type",
			sess:    newSessionMock(map[string]interface{}{sessionKeyOfMemberToken: 321}),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getSessionToken(tt.sess)
			if (err != nil) != tt.wantErr {
				t.Errorf("getSessionToken() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if diff := deep.Equal(got, tt.want); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func Test_setSessionToken(t *testing.T) {
	token := &auth.Token{AccessToken: "AT1", RefreshToken: "RT1"}

	type args struct {
		sess     *sessionMockT
		token    *auth.Token
		makeSave []bool
	}
	tests := []struct {
		name          string
		args          args
		wantSaveCount int
		wantErr       bool
	}{
		{
			name:          "OK",
			args:          args{sess: newSessionMock(nil), token: token},
			wantSaveCount: 1,
		},
		{
			name:          "OK without save",
			args:          args{sess: newSessionMock(nil, io.ErrShortBuffer), token: token, makeSave: []bool{false}},
			wantSaveCount: 0,
		},
		{
			name:    "Error nil token",
			args:    args{sess: newSessionMock(nil)},
			wantErr: true,
		},
		{
			name:    "Error saving",
			args:    args{sess: newSessionMock(nil, io.ErrShortBuffer), token: token},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := setSessionToken(tt.args.sess, tt.args.token, tt.args.makeSave...); (err != nil) != tt.wantErr {
				t.Errorf("setSessionToken() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if diff := deep.Equal(tt.args.sess.Get(sessionKeyOfMemberToken), tt.args.token); diff != nil {
				t.Error(diff)
			}
			if tt.args.sess.SaveCount != tt.wantSaveCount {
				t.Errorf("wantSaveCount=%d, SaveCount=%d", tt.wantSaveCount, tt.args.sess.SaveCount)
			}
		})
	}
}

func Test_setAuthState(t *testing.T) {
	type args struct {
		sess     sessionRecordSetterDeleterSaver
		state    string
		makeSave []bool
	}
	tests := []struct {
		name        string
		args        args
		wantState   string
		wantDeleted bool
		wantErr     bool
	}{
		{
			name:      "OK Set",
			args:      args{sess: newSessionMock(nil), state: "abcdefg"},
			wantState: "abcdefg",
		},
		{
			name:        "OK Delete",
			args:        args{sess: newSessionMock(map[string]interface{}{sessionKeyOfAuthState: "abcdefg"}), state: ""},
			wantDeleted: true,
		},
		{
			name:    "Save error",
			args:    args{sess: newSessionMock(map[string]interface{}{sessionKeyOfAuthState: "abcdefg"}, io.ErrShortBuffer), state: "dsa"},
			wantErr: true,
		},
		{
			name: "Set without save",
			args: args{
				sess:     newSessionMock(map[string]interface{}{sessionKeyOfAuthState: "abcdefg"}, io.ErrShortBuffer),
				state:    "dsa",
				makeSave: []bool{false},
			},
			wantState: "dsa",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := tt.args.sess.(*sessionMockT)
			if err := setAuthState(sess, tt.args.state, tt.args.makeSave...); (err != nil) != tt.wantErr {
				t.Errorf("setAuthState() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if sess.IsRecordExist(sessionKeyOfAuthState) == tt.wantDeleted {
				t.Errorf("wantDeleted=%t. tt.wantDeletedRecord must be deleted, but it's exist, or opposite", tt.wantDeleted)
				return
			}
			if tt.wantDeleted {
				return
			}
			if diff := deep.Equal(sess.Get(sessionKeyOfAuthState), tt.wantState); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func Test_saveSession(t *testing.T) {
	type args struct {
		sess     sessionSaver
		makeSave []bool
	}
	tests := []struct {
		name          string
		args          args
		wantSaveCount int
		wantErr       bool
	}{
		{
			name:          "OK empty makeSave arg",
			args:          args{sess: newSessionMock(nil)},
			wantSaveCount: 1,
		},
		{
			name:          "OK one true makeSave arg",
			args:          args{sess: newSessionMock(nil), makeSave: []bool{true}},
			wantSaveCount: 1,
		},
		{
			name:          "OK without saving",
			args:          args{sess: newSessionMock(nil, io.ErrShortBuffer), makeSave: []bool{false, true}},
			wantSaveCount: 0,
		},
		{
			name:    "Error saving",
			args:    args{sess: newSessionMock(nil, io.ErrShortBuffer), makeSave: []bool{true, false}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := tt.args.sess.(*sessionMockT)
			if err := saveSession(sess, tt.args.makeSave...); (err != nil) != tt.wantErr {
				t.Errorf("saveSession() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && sess.SaveCount != tt.wantSaveCount {
				t.Errorf("wantSaveCount=%d, SaveCount=%d", tt.wantSaveCount, sess.SaveCount)
			}
		})
	}
}

func Test_compareAuthStates(t *testing.T) {
	type args struct {
		sess     sessionRecordGetter
		gotState string
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			name: "Found, equal, True",
			args: args{sess: newSessionMock(map[string]interface{}{sessionKeyOfAuthState: "12345"}), gotState: "12345"},
			want: true,
		},
		{
			name: "Found, not equal, False",
			args: args{sess: newSessionMock(map[string]interface{}{sessionKeyOfAuthState: "1234325"}), gotState: "12345"},
			want: false,
		},
		{
			name: "Not found, False",
			args: args{sess: newSessionMock(nil), gotState: "12345"},
			want: false,
		},
		{
			name: "Empty got state, False",
			args: args{sess: newSessionMock(map[string]interface{}{sessionKeyOfAuthState: ""}), gotState: ""},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareAuthStates(tt.args.sess, tt.args.gotState); got != tt.want {
				t.Errorf("compareAuthStates() = %v, want %v", got, tt.want)
			}
		})
	}
}
