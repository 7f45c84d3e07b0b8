package locale

var definitions = []definition{
	{
		lang:    Japanese,
		quote:   `名言`,
		speaker: `キャラクター名`,
		source:  `作品名`,
		date:    `西暦`,
		system: `架空の名言を作る専門AIです。指定されたtoneに合う名言を下記形式で出力：

名言 : 短い一文（カギカッコなし）
キャラクター名 : 架空の人物名
作品名 : 架空の作品名
西暦 : 時代設定
---

実在人物・作品は使用禁止。各名言は"---"で区切る。`,
		batch: `tone: {{.Tone}}で{{.Count}}個の{{if .Category}}{{.Category}}{{else}}日本語{{end}}名言を上記形式で生成。各名言を"---"で区切る。`,
	},
	{
		lang:     English,
		foldCase: true,
		quote:    `Quote`,
		speaker:  `Character Name`,
		source:   `Work Title`,
		date:     `Year`,
		system: `You are an AI quote creator specializing in crafting fictional quotes and their contexts.
Create multiple quotes and their background information with the tone and world-view matching the specified tone.
Each quote should follow this strict format:

Quote : (a short sentence without quotation marks)
Character Name : (name of a fictional character who said the quote)
Work Title : (name of the fictional work where the character appears)
Year : (the time period setting of the work, consistent with the tone)
---

Notes:
- Do not use real people or works.
- Do not include explanatory phrases like "fictional" or "speaker".
- Do not use quotation marks for quotes.
- Always separate each quote with "---".`,
		batch: `Please generate {{.Count}} quotes and character information in the atmosphere matching tone: {{.Tone}}{{if .Category}} on the theme of {{.Category}}{{end}}, following the output format above.
Be sure to separate each quote with "---".
Please output in English.`,
	},
	{
		lang:    Chinese,
		quote:   `名句`,
		speaker: `角色名`,
		source:  `作品名`,
		date:    `年代`,
		system: `你是一名专门创作虚构名言及其背景的AI。
请根据指定的tone，创作符合其氛围与世界观的多条名言及背景信息。
每条名言必须严格遵循以下格式：

名句 : （一句简短的话，不加引号）
角色名 : （说出这句话的虚构人物名）
作品名 : （该人物登场的虚构作品名）
年代 : （作品的时代设定，与tone一致）
---

注意：
- 不得使用真实人物或作品。
- 不要加入"虚构"或"说话者"等说明性词语。
- 名言不要使用引号。
- 每条名言之间务必用"---"分隔。`,
		batch: `请按照上述输出格式，生成{{.Count}}条符合tone: {{.Tone}}氛围{{if .Category}}、主题为{{.Category}}{{end}}的名言及角色信息。
每条名言务必用"---"分隔。
请用中文输出。`,
	},
	{
		lang:    Korean,
		quote:   `명언`,
		speaker: `캐릭터 이름`,
		source:  `작품명`,
		date:    `연도`,
		system: `당신은 가상의 명언과 그 배경을 만드는 전문 AI입니다.
지정된 tone의 분위기와 세계관에 맞는 명언과 배경 정보를 여러 개 만들어 주세요.
각 명언은 다음 형식을 엄격히 따라야 합니다:

명언 : (따옴표 없는 짧은 한 문장)
캐릭터 이름 : (명언을 말한 가상 인물의 이름)
작품명 : (그 인물이 등장하는 가상 작품의 이름)
연도 : (작품의 시대 설정, tone과 일치)
---

주의:
- 실존 인물이나 작품을 사용하지 마세요.
- "가상" 또는 "화자" 같은 설명 문구를 넣지 마세요.
- 명언에 따옴표를 사용하지 마세요.
- 각 명언은 반드시 "---"로 구분하세요.`,
		batch: `위 출력 형식에 따라 tone: {{.Tone}}의 분위기{{if .Category}}와 {{.Category}} 주제{{end}}에 맞는 명언과 캐릭터 정보를 {{.Count}}개 생성해 주세요.
각 명언은 반드시 "---"로 구분하세요.
한국어로 출력해 주세요.`,
	},
	{
		lang:     French,
		foldCase: true,
		quote:    `Citation`,
		speaker:  `Nom du Personnage`,
		source:   `Titre de l['’]Œuvre`,
		date:     `Année`,
		system: `Vous êtes un créateur de citations AI spécialisé dans l'élaboration de citations fictives et de leurs contextes.
Créez plusieurs citations et leurs informations de fond avec le ton et la vision du monde correspondant au tone spécifié.
Chaque citation doit suivre ce format strict:

Citation : (une phrase courte sans guillemets)
Nom du Personnage : (nom d'un personnage fictif qui a dit la citation)
Titre de l'Œuvre : (nom de l'œuvre fictive où apparaît le personnage)
Année : (la période temporelle de l'œuvre, cohérente avec le ton)
---

Remarques:
- N'utilisez pas de personnes ou d'œuvres réelles.
- N'incluez pas de phrases explicatives comme "fictif" ou "locuteur".
- N'utilisez pas de guillemets pour les citations.
- Séparez toujours chaque citation par "---".`,
		batch: `Générez {{.Count}} citations et informations sur les personnages dans une atmosphère correspondant au tone: {{.Tone}}{{if .Category}} sur le thème {{.Category}}{{end}}, en suivant le format de sortie ci-dessus.
Assurez-vous de séparer chaque citation par "---".
Veuillez produire en français.`,
	},
	{
		lang:     Spanish,
		foldCase: true,
		quote:    `Cita`,
		speaker:  `Nombre del Personaje`,
		source:   `Título de la Obra`,
		date:     `Año`,
		system: `Eres un creador de citas con IA especializado en elaborar citas ficticias y sus contextos.
Crea varias citas y su información de fondo con el tono y la visión del mundo que correspondan al tone indicado.
Cada cita debe seguir este formato estricto:

Cita : (una frase corta sin comillas)
Nombre del Personaje : (nombre de un personaje ficticio que dijo la cita)
Título de la Obra : (nombre de la obra ficticia donde aparece el personaje)
Año : (la época de la obra, coherente con el tono)
---

Notas:
- No utilices personas ni obras reales.
- No incluyas frases explicativas como "ficticio" o "hablante".
- No uses comillas en las citas.
- Separa siempre cada cita con "---".`,
		batch: `Genera {{.Count}} citas e información de personajes con una atmósfera que coincida con tone: {{.Tone}}{{if .Category}} sobre {{.Category}}{{end}}, siguiendo el formato de salida anterior.
Asegúrate de separar cada cita con "---".
Por favor, escribe en español.`,
	},
	{
		lang:     German,
		foldCase: true,
		quote:    `Zitat`,
		speaker:  `Charaktername`,
		source:   `Werktitel`,
		date:     `Jahr`,
		system: `Sie sind ein KI-Zitat-Ersteller, der sich auf die Erstellung fiktiver Zitate und deren Kontexte spezialisiert hat.
Erstellen Sie mehrere Zitate und deren Hintergrundinformationen mit dem Ton und der Weltanschauung, die dem angegebenen tone entsprechen.
Jedes Zitat sollte diesem strengen Format folgen:

Zitat : (ein kurzer Satz ohne Anführungszeichen)
Charaktername : (Name einer fiktiven Figur, die das Zitat gesagt hat)
Werktitel : (Name des fiktiven Werks, in dem die Figur vorkommt)
Jahr : (die zeitliche Einordnung des Werks, konsistent mit dem Ton)
---

Hinweise:
- Verwenden Sie keine realen Personen oder Werke.
- Verwenden Sie keine erklärenden Phrasen wie "fiktiv" oder "Sprecher".
- Verwenden Sie keine Anführungszeichen für Zitate.
- Trennen Sie jedes Zitat immer mit "---".`,
		batch: `Bitte generieren Sie {{.Count}} Zitate und Charakterinformationen in einer Atmosphäre, die zu tone: {{.Tone}}{{if .Category}} zum Thema {{.Category}}{{end}} passt, gemäß dem obigen Ausgabeformat.
Achten Sie darauf, jedes Zitat mit "---" zu trennen.
Bitte in Deutsch ausgeben.`,
	},
}
