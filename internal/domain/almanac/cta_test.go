package almanac

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCTAMarshal(t *testing.T) {
	call, err := json.Marshal(CTA{Action: Call{Value: "900"}})
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"call","value":"900"}`, string(call))

	link, err := json.Marshal(CTA{Action: Link{Value: "https://7dach.ru"}})
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"link","value":"https://7dach.ru"}`, string(link))

	// done carries no payload
	done, err := json.Marshal(CTA{Action: Done{}})
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"done"}`, string(done))
}

func TestCTAUnmarshal(t *testing.T) {
	var cta CTA
	require.NoError(t, json.Unmarshal([]byte(`{"type":"call","value":"112"}`), &cta))
	require.Equal(t, Call{Value: "112"}, cta.Action)

	require.NoError(t, json.Unmarshal([]byte(`{"type":"done","value":"ignored"}`), &cta))
	require.Equal(t, Done{}, cta.Action)
}

func TestCTAUnmarshalRejectsUnknownType(t *testing.T) {
	var cta CTA
	err := json.Unmarshal([]byte(`{"type":"teleport","value":"moon"}`), &cta)
	require.Error(t, err)
	require.Contains(t, err.Error(), "teleport")
}

func TestNoticeOmitsMissingCTA(t *testing.T) {
	raw, err := json.Marshal(ImportantNotice{Topic: "сад", Title: "Полив"})
	require.NoError(t, err)
	require.NotContains(t, string(raw), "cta")
}
