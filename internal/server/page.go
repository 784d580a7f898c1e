package server

import "html/template"

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Flashcard Generator</title>
    <style>
        :root {
            --bg-color: #0f172a;
            --card-bg: #1e293b;
            --card-back-bg: #334155;
            --text-color: #f1f5f9;
            --muted-color: #94a3b8;
            --accent-color: #3b82f6;
            --accent-hover: #2563eb;
            --error-color: #ef4444;
        }
        body {
            background-color: var(--bg-color);
            color: var(--text-color);
            font-family: 'Inter', -apple-system, BlinkMacSystemFont, sans-serif;
            margin: 0;
            min-height: 100vh;
        }
        .page {
            max-width: 960px;
            margin: 0 auto;
            padding: 2rem 1rem;
        }
        h1 { text-align: center; }
        .subtitle { text-align: center; color: var(--muted-color); margin-bottom: 2rem; }
        .upload {
            background-color: var(--card-bg);
            border-radius: 1rem;
            padding: 2rem;
            text-align: center;
        }
        input[type="file"] { color: var(--muted-color); margin-bottom: 1rem; }
        button {
            padding: 0.75rem 1.5rem;
            border-radius: 0.5rem;
            border: none;
            background-color: var(--accent-color);
            color: white;
            font-weight: 600;
            font-size: 1rem;
            cursor: pointer;
            transition: background-color 0.2s;
        }
        button:hover { background-color: var(--accent-hover); }
        button:disabled { opacity: 0.5; cursor: not-allowed; }
        .overlay {
            position: fixed;
            inset: 0;
            background-color: var(--bg-color);
            display: flex;
            justify-content: center;
            align-items: center;
            z-index: 10;
        }
        .overlay.hidden { display: none; }
        .gate {
            background-color: var(--card-bg);
            padding: 2rem;
            border-radius: 1rem;
            width: 100%;
            max-width: 400px;
            text-align: center;
        }
        .gate input {
            width: 100%;
            padding: 0.75rem;
            border-radius: 0.5rem;
            border: 1px solid #475569;
            background-color: #334155;
            color: white;
            margin-bottom: 1rem;
            box-sizing: border-box;
            font-size: 1rem;
        }
        .message { margin-top: 1rem; font-size: 0.875rem; min-height: 1.25rem; }
        .error { color: var(--error-color); }
        #loading { display: none; text-align: center; margin-top: 2rem; color: var(--muted-color); }
        #error { display: none; text-align: center; margin-top: 2rem; }
        #results { display: none; margin-top: 2rem; }
        #card-count { text-align: center; color: var(--muted-color); margin-bottom: 1.5rem; }
        .toolbar { text-align: center; margin-bottom: 1.5rem; }
        .cards {
            display: grid;
            grid-template-columns: repeat(auto-fill, minmax(260px, 1fr));
            gap: 1rem;
        }
        .flip-card { perspective: 1000px; min-height: 180px; cursor: pointer; }
        .flip-card-inner {
            position: relative;
            width: 100%;
            height: 100%;
            min-height: 180px;
            transition: transform 0.5s;
            transform-style: preserve-3d;
        }
        .flip-card.flipped .flip-card-inner { transform: rotateY(180deg); }
        .flip-card-front, .flip-card-back {
            position: absolute;
            inset: 0;
            backface-visibility: hidden;
            -webkit-backface-visibility: hidden;
            border-radius: 0.75rem;
            padding: 1.25rem;
            box-sizing: border-box;
            overflow-y: auto;
        }
        .flip-card-front { background-color: var(--card-bg); }
        .flip-card-back { background-color: var(--card-back-bg); transform: rotateY(180deg); }
        .card-label { font-weight: 700; color: var(--accent-color); margin-bottom: 0.5rem; }
        .spinner {
            width: 2rem;
            height: 2rem;
            margin: 0 auto 1rem;
            border: 4px solid rgba(255, 255, 255, 0.2);
            border-radius: 50%;
            border-top-color: var(--accent-color);
            animation: spin 0.8s linear infinite;
        }
        @keyframes spin { to { transform: rotate(360deg); } }
    </style>
</head>
<body>
    <div id="password-overlay" class="overlay">
        <div class="gate">
            <h1>&#128274; Flashcard Generator</h1>
            <p>Enter the password to continue.</p>
            <input type="password" id="password-input" placeholder="Password" autofocus autocomplete="off">
            <button id="password-submit">Unlock</button>
            <p id="password-error" class="message error"></p>
        </div>
    </div>

    <div class="page">
        <h1>Flashcard Generator</h1>
        <p class="subtitle">Upload a PDF, TXT, DOCX or PPTX file and get study flashcards.</p>

        <div class="upload">
            <input type="file" id="file-input" accept=".pdf,.txt,.docx,.pptx">
            <br>
            <button id="generate-btn" disabled>Generate Flashcards</button>
        </div>

        <div id="loading">
            <div class="spinner"></div>
            <p>Generating flashcards... this can take a while for large files.</p>
        </div>

        <div id="error" class="error"></div>

        <div id="results">
            <p id="card-count"></p>
            <div class="toolbar">
                <button id="export-btn">Export JSON</button>
            </div>
            <div id="cards" class="cards"></div>
        </div>
    </div>

    <script>
        var AUTH_KEY = 'flashgen_authenticated';

        var overlay = document.getElementById('password-overlay');
        var passwordInput = document.getElementById('password-input');
        var passwordSubmit = document.getElementById('password-submit');
        var passwordError = document.getElementById('password-error');
        var fileInput = document.getElementById('file-input');
        var generateBtn = document.getElementById('generate-btn');
        var loadingEl = document.getElementById('loading');
        var errorEl = document.getElementById('error');
        var resultsEl = document.getElementById('results');
        var cardCountEl = document.getElementById('card-count');
        var cardsEl = document.getElementById('cards');
        var exportBtn = document.getElementById('export-btn');

        var selectedFile = null;
        var currentFlashcards = [];
        var generationSeq = 0;

        // Access gate: the flag lives for the tab session only.
        if (sessionStorage.getItem(AUTH_KEY) === 'true') {
            overlay.classList.add('hidden');
        }

        async function submitPassword() {
            var candidate = passwordInput.value;
            try {
                var resp = await fetch('/api/verify_password', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ password: candidate })
                });
                var data = await resp.json();
                if (resp.ok && data.authenticated) {
                    sessionStorage.setItem(AUTH_KEY, 'true');
                    overlay.classList.add('hidden');
                    passwordError.textContent = '';
                    passwordInput.value = '';
                } else {
                    passwordError.textContent = 'Incorrect password. Please try again.';
                    passwordInput.value = '';
                    passwordInput.focus();
                }
            } catch (err) {
                passwordError.textContent = 'Error verifying password. Please try again.';
                passwordInput.value = '';
            }
        }

        passwordSubmit.addEventListener('click', submitPassword);
        passwordInput.addEventListener('keydown', function (e) {
            if (e.key === 'Enter') submitPassword();
        });

        fileInput.addEventListener('change', function () {
            if (fileInput.files.length > 0) {
                selectedFile = fileInput.files[0];
                generateBtn.disabled = false;
                generateBtn.textContent = 'Generate Flashcards from "' + selectedFile.name + '"';
            } else {
                selectedFile = null;
                generateBtn.disabled = true;
                generateBtn.textContent = 'Generate Flashcards';
            }
        });

        function encodeFile(file) {
            return new Promise(function (resolve, reject) {
                var reader = new FileReader();
                reader.onload = function () { resolve(reader.result); };
                reader.onerror = function () { reject(reader.error); };
                reader.readAsDataURL(file);
            });
        }

        generateBtn.addEventListener('click', async function () {
            if (!selectedFile) return;

            loadingEl.style.display = 'block';
            resultsEl.style.display = 'none';
            errorEl.style.display = 'none';

            // Only the most recent request may apply its result.
            var seq = ++generationSeq;

            try {
                var dataUrl = await encodeFile(selectedFile);
                var encoded = dataUrl.split(',')[1];

                var resp = await fetch('/api/generate_flashcards', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({
                        file_content: encoded,
                        file_type: selectedFile.type
                    })
                });
                var data = await resp.json();

                if (seq !== generationSeq) return; // stale response, discard

                if (resp.ok && data.success) {
                    currentFlashcards = data.flashcards || [];
                    renderFlashcards(currentFlashcards);
                } else {
                    showError(data.message || data.error || 'Failed to generate flashcards.');
                }
            } catch (err) {
                if (seq !== generationSeq) return;
                showError('Error generating flashcards: ' + err.message);
            }
        });

        function showError(message) {
            loadingEl.style.display = 'none';
            resultsEl.style.display = 'none';
            errorEl.textContent = message;
            errorEl.style.display = 'block';
        }

        function escapeHtml(text) {
            var div = document.createElement('div');
            div.textContent = text;
            return div.innerHTML;
        }

        function cardText(text) {
            return escapeHtml(text).replace(/\n/g, '<br>');
        }

        function renderFlashcards(flashcards) {
            loadingEl.style.display = 'none';
            errorEl.style.display = 'none';
            resultsEl.style.display = 'block';

            cardCountEl.textContent = 'Generated ' + flashcards.length +
                (flashcards.length === 1 ? ' flashcard' : ' flashcards');

            cardsEl.innerHTML = '';
            flashcards.forEach(function (card, i) {
                var n = i + 1;
                var el = document.createElement('div');
                el.className = 'flip-card';
                el.innerHTML =
                    '<div class="flip-card-inner">' +
                        '<div class="flip-card-front">' +
                            '<div class="card-label">Q' + n + '</div>' +
                            '<div>' + cardText(card.question) + '</div>' +
                        '</div>' +
                        '<div class="flip-card-back">' +
                            '<div class="card-label">A' + n + '</div>' +
                            '<div>' + cardText(card.answer) + '</div>' +
                        '</div>' +
                    '</div>';
                el.addEventListener('click', function () {
                    el.classList.toggle('flipped');
                });
                cardsEl.appendChild(el);
            });
        }

        exportBtn.addEventListener('click', function () {
            if (currentFlashcards.length === 0) return;

            var blob = new Blob([JSON.stringify(currentFlashcards, null, 2)],
                { type: 'application/json' });
            var url = URL.createObjectURL(blob);
            var a = document.createElement('a');
            a.href = url;
            a.download = 'flashcards.json';
            a.click();
            URL.revokeObjectURL(url);
        });
    </script>
</body>
</html>
`

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))
