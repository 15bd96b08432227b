package prompt

const systemES = `Eres un experto profesor de medicina especializado en educación médica para estudiantes cubanos.
Tu rol es generar contenido educativo de alta calidad, preciso y relevante.
Siempre responde en formato JSON válido sin texto adicional.
Adapta el contenido al contexto médico cubano cuando sea relevante.`

const systemEN = `You are an expert medical professor specialized in medical education for Cuban students.
Your role is to generate high-quality, accurate, and relevant educational content.
Always respond in valid JSON format without additional text.
Adapt content to the Cuban medical context when relevant.`

// The field names and cardinalities below must stay in step with the
// schemas in internal/shape.

const mcqES = `Genera exactamente 1 pregunta de opción múltiple de nivel médico sobre: {{.topic}}.
Dificultad: {{.difficulty}}

IMPORTANTE: Responde SOLO con un objeto JSON válido, sin texto adicional ni markdown.

El formato JSON debe ser exactamente:
{
  "question": "La pregunta aquí",
  "options": ["A) Primera opción", "B) Segunda opción", "C) Tercera opción", "D) Cuarta opción"],
  "correctAnswer": "A",
  "explanation": "Explicación breve de por qué esta es la respuesta correcta"
}

Asegúrate de que:
- La pregunta sea clínicamente relevante y precisa
- Haya exactamente 4 opciones (A, B, C, D)
- Las opciones estén bien diferenciadas
- Solo una opción sea claramente correcta
- La explicación sea concisa pero informativa
- Todo esté en español`

const mcqEN = `Generate exactly 1 medical-level multiple choice question about: {{.topic}}.
Difficulty: {{.difficulty}}

IMPORTANT: Respond ONLY with a valid JSON object, no additional text or markdown.

The JSON format must be exactly:
{
  "question": "The question here",
  "options": ["A) First option", "B) Second option", "C) Third option", "D) Fourth option"],
  "correctAnswer": "A",
  "explanation": "Brief explanation of why this is the correct answer"
}

Ensure that:
- The question is clinically relevant and accurate
- There are exactly 4 options (A, B, C, D)
- Options are well differentiated
- Only one option is clearly correct
- The explanation is concise but informative`

const quizES = `Genera exactamente {{.count}} preguntas de opción múltiple de nivel médico sobre: {{.topic}}.
Varía la dificultad entre las preguntas.

IMPORTANTE: Responde SOLO con un array JSON válido, sin texto adicional ni markdown.

El formato JSON debe ser exactamente:
[
  {
    "question": "Pregunta 1",
    "options": ["A) Opción", "B) Opción", "C) Opción", "D) Opción"],
    "correctAnswer": "A",
    "explanation": "Explicación"
  },
  ...
]

Asegúrate de que:
- Las preguntas sean variadas y cubran diferentes aspectos del tema
- Cada pregunta tenga exactamente 4 opciones (A, B, C, D)
- Las explicaciones sean concisas pero informativas
- Todo esté en español`

const quizEN = `Generate exactly {{.count}} medical-level multiple choice questions about: {{.topic}}.
Vary the difficulty across questions.

IMPORTANT: Respond ONLY with a valid JSON array, no additional text or markdown.

The JSON format must be exactly:
[
  {
    "question": "Question 1",
    "options": ["A) Option", "B) Option", "C) Option", "D) Option"],
    "correctAnswer": "A",
    "explanation": "Explanation"
  },
  ...
]

Ensure that:
- Questions are varied and cover different aspects of the topic
- Each question has exactly 4 options (A, B, C, D)
- Explanations are concise but informative`

const explainES = `Explica el siguiente tema médico de manera clara y estructurada: {{.topic}}

IMPORTANTE: Responde SOLO con un objeto JSON válido, sin texto adicional ni markdown.

El formato JSON debe ser exactamente:
{
  "definition": "Definición clara del tema",
  "clinicalFeatures": "Características clínicas principales, síntomas y signos",
  "diagnosis": "Métodos de diagnóstico y criterios",
  "treatment": "Opciones de tratamiento principales",
  "lowResourceConsiderations": "Consideraciones para entornos de recursos limitados, adaptaciones prácticas para contextos como Cuba"
}

Asegúrate de que:
- El contenido sea médicamente preciso
- Use lenguaje claro pero profesional
- Incluya información práctica y relevante
- Las consideraciones de recursos limitados sean realistas y útiles
- Todo esté en español`

const explainEN = `Explain the following medical topic in a clear and structured way: {{.topic}}

IMPORTANT: Respond ONLY with a valid JSON object, no additional text or markdown.

The JSON format must be exactly:
{
  "definition": "Clear definition of the topic",
  "clinicalFeatures": "Main clinical features, symptoms and signs",
  "diagnosis": "Diagnostic methods and criteria",
  "treatment": "Main treatment options",
  "lowResourceConsiderations": "Considerations for low-resource settings, practical adaptations for contexts like Cuba"
}

Ensure that:
- Content is medically accurate
- Uses clear but professional language
- Includes practical and relevant information
- Low-resource considerations are realistic and useful`
