package relay

import (
	"encoding/json"
	"fmt"
	"time"
)

// Polling parameters for the injected registration snippet: the ArcGIS JS
// API loads asynchronously inside the dashboard, so the snippet waits for
// it before registering the token.
const (
	ScriptPollInterval = 100 * time.Millisecond
	ScriptPollTimeout  = 10 * time.Second
)

const scriptTemplate = `(function () {
  var started = Date.now();
  var timer = setInterval(function () {
    if (Date.now() - started > %d) {
      clearInterval(timer);
      return;
    }
    if (typeof require !== "function") {
      return;
    }
    clearInterval(timer);
    require(["esri/identity/IdentityManager"], function (esriId) {
      esriId.registerToken({ server: %s, token: %s });
    });
  }, %d);
})();`

// InjectionScript returns the snippet planted into a same-origin frame by
// the script-injection strategy. Values are JSON-quoted so tokens and
// URLs cannot break out of the script.
func InjectionScript(portalURL, token string) string {
	server, _ := json.Marshal(portalURL + "/sharing/rest")
	quotedToken, _ := json.Marshal(token)
	return fmt.Sprintf(scriptTemplate,
		ScriptPollTimeout.Milliseconds(),
		server,
		quotedToken,
		ScriptPollInterval.Milliseconds(),
	)
}
