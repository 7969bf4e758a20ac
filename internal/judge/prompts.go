package judge

import "fmt"

const complianceSystem = "You are a Senior Quality & Compliance Auditor. " +
	"You perform unified analyses of implemented code against requirements and guidelines " +
	"and respond with JSON only."

const complianceTemplate = `Perform a UNIFIED ANALYSIS of the implemented code against requirements and guidelines.

Requirements Document:
%s

Do's and Don'ts Guidelines:
%s

Implemented Code Context:
%s

Your Task:
Analyze the code for THREE critical areas and provide a comprehensive report:

1. **REQUIREMENT DRIFT**:
   - Detect **MISSING** features (in requirements but not in code).
   - Detect **EXTRA** features (in code but not in requirements - "Gold Plating").
   - Detect **MODIFIED** features (implemented differently than required).

2. **FEATURE COMPLETENESS**:
   - Identify features from requirements that are partially implemented or missing.
   - Assess implementation quality and depth.

3. **GUIDELINE COVERAGE (Do's & Don'ts)**:
   - Validate if "Do's" are followed and "Don'ts" are avoided.
   - Identify gaps in best practices, security, and error handling.

Scoring Rubric (0 to 100):
- **Start at 100 points**.
- Subtract points for each issue found.
- **MINIMUM SCORE IS 0**. The final score must be between 0 and 100.
- -20: Major feature missing or incomplete.
- -15: Violation of critical "Don't" guideline.
- -10: Feature modified significantly without justification.
- -10: Missing critical "Do" (security/validation).
- -5: Minor extra feature (gold plating).
- -5: Minor guideline deviation or code smell.

**DEDUPLICATION**: If two or more issues are semantically the same (e.g., a "missing feature" and a "coverage gap" describing the same thing), merge them into a single concise item.

For EACH issue, provide:
- **Type**: Drift/Completeness/Guideline Violation
- **Description**: What is the issue?
- **Evidence**: Specific file and LINE NUMBERS (e.g., app.py:L45-L50) where the issue or relevant code is found. Provide the code snippet if useful.
- **Reasoning**: Why is this a problem?
- **Remediation**: Instructions for the fix.

Output JSON format ONLY:
{
    "score": 85,
    "summary": "Overall quality summary...",
    "issues": [
        {
            "type": "...",
            "description": "...",
            "evidence": "...",
            "reasoning": "...",
            "remediation": "..."
        }
    ]
}`

const evolutionSystem = "You are a Feature Loss Detective analyzing commit history to identify removed features. " +
	"You respond with JSON only."

const evolutionTemplate = `Analyze the repository's evolution to identify removed features.

Requirements Document:
%s

Do's and Don'ts Guidelines:
%s

Current Code Context (Current Implementation):
%s

Commit History Timeline:
%s

Full Code Diff (Between Base: %[6]s and Head: %[7]s):
%[5]s

Your Task:
1. **Identify Feature Loss**: Find features that existed in requirements or base commits but are now altered/removed.
2. **Detect REPLACEMENTS**: Check if code marked with '-' (deleted) was replaced by code marked with '+' (added) or exists in the Current Implementation.
   - If it was replaced by new logic performing the same feature, mark it as "Replacement - Feature Preserved".
   - If it was deleted/changed with NO equivalent code found, mark it as "Accidental Loss - Feature Missing".
3. **Analyze Entire Evolution**: Take into account the whole commit history provided to understand the developer's intent.

Scoring Rubric (0 to 100):
- **Start at 100 points**.
- Subtract points for each issue found.
- **MINIMUM SCORE IS 0**. The final score must be between 0 and 100.
- -30: Critical feature deleted and NOT replaced.
- -10: Feature replaced with inferior logic.
- -5: Feature replaced with better/equivalent logic (refactor).

Output JSON format ONLY:
{
    "feature_loss_score": 85,
    "base_commit": "%[6]s",
    "head_commit": "%[7]s",
    "feature_changes": [
        {
            "feature_name": "...",
            "status": "Loss/Replacement/Updated",
            "severity": "Critical/High/Medium/Low",
            "evidence": "Describe deleted vs added code, include LINE NUMBERS if possible (e.g. from diff context)",
            "replacement_logic": "Explain the new logic found",
            "impact": "...",
            "reasoning": "...",
            "remediation": "..."
        }
    ],
    "summary": "Full evolution summary..."
}`

// noGuidelines stands in for an empty guidelines document in prompts.
const noGuidelines = "No specific guidelines provided."

// renderCompliance fills the compliance prompt template.
func renderCompliance(requirements, guidelines, codeSnapshot string) string {
	return fmt.Sprintf(complianceTemplate, requirements, guidelines, codeSnapshot)
}

// renderEvolution fills the evolution prompt template.
func renderEvolution(requirements, guidelines, codeSnapshot, timeline, diff, baseHash, headHash string) string {
	return fmt.Sprintf(evolutionTemplate, requirements, guidelines, codeSnapshot, timeline, diff, baseHash, headHash)
}
