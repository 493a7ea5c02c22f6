package server

import "net/http"

// handleIndex serves the single-page web UI
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Logic Solver</title>
<style>
  body { font-family: sans-serif; max-width: 780px; margin: 2rem auto; padding: 0 1rem; color: #222; }
  h1 { font-size: 1.5rem; }
  textarea { width: 100%; height: 9rem; font-size: 1rem; padding: 0.5rem; box-sizing: border-box; }
  button { margin-top: 0.5rem; padding: 0.5rem 1.5rem; font-size: 1rem; cursor: pointer; }
  button:disabled { cursor: wait; opacity: 0.6; }
  pre { background: #f4f4f4; padding: 0.75rem; overflow-x: auto; white-space: pre-wrap; }
  .block { margin-top: 1.5rem; display: none; }
  .block h2 { font-size: 1.1rem; margin-bottom: 0.25rem; }
  #status { margin-top: 1rem; font-style: italic; color: #555; }
  #warning { color: #b00; margin-top: 0.5rem; }
  #answer { border-top: 2px solid #ddd; padding-top: 1rem; }
</style>
</head>
<body>
<h1>Logic Solver (ASP + LLM)</h1>
<p>Describe a logic puzzle. The model writes the logic rules, the solver solves them rigorously, and the model explains the result.</p>
<textarea id="query" placeholder="e.g., In a box I have a blue dinosaur, a red pen and a green ball. The dinosaur is not next to the pen. What is in the middle?"></textarea>
<br>
<button id="solve">Solve Logic</button>
<div id="warning"></div>
<div id="status"></div>

<div class="block" id="programBlock">
  <h2>Generated Program</h2>
  <pre id="program"></pre>
</div>
<div class="block" id="modelsBlock">
  <h2 id="modelsHeading">Models</h2>
  <pre id="models"></pre>
</div>
<div class="block" id="answerBlock">
  <h2>&#128161; Answer</h2>
  <div id="answer"></div>
</div>

<script>
const el = id => document.getElementById(id);

function show(id) { el(id).style.display = "block"; }
function hide(id) { el(id).style.display = "none"; }

el("solve").addEventListener("click", async () => {
  const query = el("query").value;
  el("warning").textContent = "";
  if (!query.trim()) {
    el("warning").textContent = "Please enter a question.";
    return;
  }

  hide("programBlock"); hide("modelsBlock"); hide("answerBlock");
  el("solve").disabled = true;
  el("status").textContent = "Thinking... (Step 1: Translating to Logic)";

  try {
    const resp = await fetch("/solve", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({ query })
    });
    const data = await resp.json();

    if (data.program) {
      el("program").textContent = data.program;
      show("programBlock");
    }
    if (data.models) {
      el("modelsHeading").textContent = "Found " + data.modelCount + " Model(s)";
      el("models").textContent = JSON.stringify(data.models, null, 2);
      show("modelsBlock");
    }
    if (data.explanation) {
      el("answer").textContent = data.explanation;
      show("answerBlock");
    }
    el("status").textContent = data.success ? "Complete!" : "";
    if (!data.success && data.error) {
      el("warning").textContent = data.error;
      el("status").textContent = "";
    }
  } catch (err) {
    el("warning").textContent = "Request failed: " + err;
    el("status").textContent = "";
  } finally {
    el("solve").disabled = false;
  }
});
</script>
</body>
</html>
`
